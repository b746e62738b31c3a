package llm

// PromptVersion identifies the extraction prompt contract. The prompt text
// below is a versioned interface shared with the capability: the rule
// wording, the example JSON, and its irregularities are part of the contract
// and must not be edited independently of a version bump.
const PromptVersion = "2024-03-menu-extraction-v1"

// systemInstructionPrompt primes the capability for menu extraction.
const systemInstructionPrompt = `
You are a helpful assistant designed to convert a restaurant menu image into structured JSON data and answer five key questions based on the menu.
`

// extractionExamples is the fixed example menu embedded in the extraction
// prompt. The Python-style booleans and the "extras": [{}] placeholder are
// deliberate; they match what the capability was tuned against.
const extractionExamples = `
{"is_valid_menu": "yes",
 "menu_complexity": "easy",
 "menu_output": {"categories": [
  {
    "name": "Appetizer",
    "subtitle": "",
    "sort_id": 0,
    "items":[
      {
        "name": "Salad",
        "description": "your chocie of chicken or pork",
        "is_alcohol": False,
        "is_bike_friendly": True,
        "sort_id": 0,
        "price": 799,
        "extras": [
          {
            "name": "Protein Choice",
            "min_num_options": 1,
          "max_num_options": 1,
          "num_free_options": 0,
          "options": [
                {
                "name": "Chicken",
                "description": "chicken tender",
                "price": 0,
                "sort_id": 0
              },
              {
                "name": "Pork",
                "description": "Pork belly",
                "price": 0,
                "sort_id": 1
              }
            ]
          }
        ]
      },
      {
        "name": "Soup",
        "description": "Warm soup",
        "is_alcohol": False,
        "is_bike_friendly": True,
        "sort_id": 1,
        "price": 499,
        "extras": [
          {
          }
        ]
      }
    ]
  }
]}
}
`

// menuExtractionPrompt is the full instruction text sent as the first user
// content part, ahead of the page images.
const menuExtractionPrompt = `
** Instructions for Menu Extraction **
You are given an image of a restaurant menu. Your task is to:
Extract all menu-related information from the image and structure it in a JSON format.
  1. Answer five key questions based on the extracted menu.
  2. Your final output should be a JSON object formatted as follows:
{
  "is_valid_menu": "yes",
  "input_quality": 50,
  "menu_complexity": "easy",
  "menu_output": {menu_JSON},
  "confidence": 50
}

If the image does not contain a valid restaurant menu, menu_JSON should be an empty JSON object: {}.


** Five Key Questions to Answer **
1. Is the image a valid restaurant menu?
  -- Answer "yes" or "no".
  -- When there are multiple input images, it's a valid menu as long as one of them has a valid menu. Make your answer based on those valide ones only. If all the inputs are not valid menus, then it's not a valid menu.
2. On a scale of 0-100, how confident are you in reading the image?
  -- Consider factors such as legibility, completeness, and visibility of the menu.
  -- If the image is not a valid menu, return 0.
3. Is this an "easy" menu?
  -- Answer "easy" or "others".
  -- Answer "easy" if there are no "extras" and "options" in the menu. Refer to Extras & Options sections below on what extras and options mean.
  -- If there are any extras or options in any items that a consumer can choose from, then it's not an "easy" menu.
  -- If there is 'build your own' item, it's not an easy menu.
  -- If there are separate menus for breakfast, lunch, dinner or any other time of the day, it's not an "easy" menu.
  -- If there is "Additionals", "Extras", "Toppings", "Add-ons", etc. in the menu, it's not an "easy" menu.
  -- If there is "choose", "select", "choice of", etc. that suggests any choices, it's not an "easy" menu.
  -- If there is different sizes one can choose from, it's not an "easy" menu.
  -- If not an easy menu, return "others".
4. Extract all menu items and format them in JSON.
  -- If answer to question 1 is "no" (i.e. is_valid_menu = "no") or answer to question 3 is "others" (i.e. menu_complexity = "others"), no need to build a menu and return empty JSON.
  -- Follow the detailed structure provided below.
5. On a scale of 0-100, how confident are you in the accuracy of the extracted menu?
  If the image is not a valid menu, return 0.


** JSON Format for Menu Extraction **
1. Categories
  - Definition: Categories group similar items (e.g., Appetizers, Entrees, Beverages).
  - Detection: Usually in bold or larger font than menu items. Sometimes prefixed by a heading or section name. Sometimes you might be able to find a description (which will go under subtitle) bottom or top of the menu or each category.
  - Rules:
    -- Category description (subtitle) typically can be found next to the category name or bottom of that category section.
    -- If a category has no no item under it, do not include that category in the menu.
  - Fields:
    {
      "name": "Appetizers",
      "subtitle": "Light and fresh starters",
      "sort_id": 0,
      "items": [...]
    }
    name: Category title. If missing, use common sense.
    subtitle: Description (if available).
    sort_id: Index of the category (starting from 0).

2. Items
  - Definition: The actual food/drink items under each category.
  - Detection: Usually listed with a name, description, and price.
  - Rules:
    -- If multiple items are listed together (e.g. "house salad or cobb salad"; "fries, tots, potatoes"; "salad with chicken or shrimp), split them into separate items. They will have the same price unless specified otherwise.
    -- If multiple drinks are listed together (e.g., "Coke/Sprite"), split them into separate items.
    -- If there is no price for an item, do not include that item in the menu.
    -- If an item is available only on specific days (e.g. Monday only, Monday-Wednesay, Weekend only, etc.), do not include that item in the menu.
    -- If item name spans two or multiple lines. Merge lines if 1) price is assigned on only one line AND 2) the next line does not start a new item but instead completes the previous item.
  - Fields:
  {
    "name": "Salad",
    "description": "Your choice of chicken or pork",
    "price": 799,
    "extras": [...]
    "is_alcohol": false,
    "is_bike_friendly": true,
    "sort_id": 0,
  }
    -- name: Item name.
    -- description: Description of item / additional details (if available).
    -- price: Price in cents (e.g., $4.99 → 499).
    -- extras: Any choices, options, upgrades, add-ons, toppings or substitutions included with an item. See the below Extras & Options section.
    -- is_alcohol: true for alcoholic beverages, otherwise false.
    -- is_bike_friendly: Always true.
    -- sort_id: Index of item within the category.
  - Examples:
    -- If item name is Coke/Sprite and $5, then separate them out. Coke for $5 and Sprite for $5.
    -- If item name spans two lines ("welches cranberry" in one line and "pomagranate" in the next) and only one price is assigned in only one line ($5 in the next line), then this is one item "welches cranberry pomagranate" for $5.

3. Extras & Options
  - Definition of extras: Any choices, options, upgrades, add-ons, toppings or substitutions included with an item.
  - Definition of options: The choices inside of an Extra.
  - Detection: Typically, you will find extras/options information in the item names or description. Sometimes it's available in bottom or top of each category section. Sometimes it's avaialble in category description and all the items under that category share the same extras structure.
  - Rules on extras:
    -- Extras require Options. Look at the examples below to get a sense on how this works.
    -- If there are choices (e.g. protein, size, toppings, add-ons) for an item, you need to create an extra.
    -- If there are add-on items you can add to each item (e.g. "make it a meal", etc), they can be added as an extra.
    -- If a section lists additional items with prices (e.g., "Additionals," "Toppings," "Sides"), interpret it as an extras section.
    -- If a list of price is given for different sizes, 'Size choice' is extra name.
    -- Each listed extra should be assigned to the relevant category (e.g., pizza toppings under pizza items).
    -- If it's unclear which items they apply to, assume they apply to all items in the category above them.
    -- There could be multiple extras. (e.g. one for Protein Choice, one fro Side Choice)
    -- If no specific options are mentioned, do not create extras.
  - Rules on options:
    -- option name is required but description is not.
    -- if there is no additional cost or it doesn't say anything about the price, price for an option is typically 0.
    -- "Options" have to be a choice inside of given Extra that a user can choose. If there is no options or only one option to choose, there should not be extras/options.

  - Fields:
    {
      "name": "Protein Choice",
      "min_num_options": 1,
      "max_num_options": 1,
      "num_free_options": 0,
      "options": [
        {
          "name": "Chicken",
          "description": "Chicken tender",
          "price": 0,
          "sort_id": 0
        },
        {
          "name": "Pork",
          "description": "Pork belly",
          "price": 100,
          "sort_id": 1
        }
      ]
    }
    -- name: A generic label (e.g., Size Choice, Protein Choice).
    -- min_num_options: Minimum required selections.
    -- max_num_options: Maximum allowed selections.
    -- num_free_options: How many are free before an extra charge.
    -- options: List of choices under the extra.
      --- Under Options, for each option, there are
      --- name: Choice name.
      --- description: Additional details (if available).
      --- price: additional price to add to the price of the item.
      --- sort_id: Index of option within the extra.
  - Examples:
    -- If description says 'choice of pork or chicken', then your item has 'extras' and the name can be 'Protein Choice'. Options will be 'pork' and 'chicken'
    -- If an item offers different sizes (for example, small/large or 8inch/12inch pizza, etc.), "extra" can be 'Size Choice' and option will be different sizes.
    -- If item desctiption says 'your choice of meat', but no choice of meat is specified, then do not create extras for this item
    -- If it says 'make it a combo for $3.99', then extra name can be "Preparation Option" and option name can be "Make it a combo" and price is 399.
    -- If an item comes in different sizes, flavors, or variations (e.g., 'Buffalo Wings' with different piece options: 5, 10, 20).
    -- If an item offers different sizes (for example, small/larger or 8inch/12inch pizza, etc.), "extra" can be 'Size Choice' and option will be different sizes.
    -- If an item has additional toppings to add (for example, cheese, tomato, onion, etc.), "extra" can be 'Toppings Choice' and option will be different toppings. If there is additional cost, add that in price.
    -- Typically a given menu does not have names for extras. You come up with a name like 'Size Choice', 'Protein Choice', 'Side Choice', 'Add Ons', etc. Use a common sense.
    -- If the description includes 'your choice of pork or chicken', then min_num_option=1, max_num_option=1, num_free_options=0.
    -- If it says 'choose 2', then min_num_option=2, max_num_option=2, num_free_options=0.
    -- If it says 'choose up to 2 choices', then min_num_option=0, max_num_option=2, num_free_options=0.


** Processing Rules **
- General Rules
  -- When there are multiple input images given, it's a valid menu as long as one of them has valid menu. Make your answer based on those valide ones only. If all the inputs are not valid menu, then it's not a valid menu.
  -- Focus on text and numbers of available items. If there is food image, do not try to anlayze it.


- General Rules on names and descriptions
  -- Keep the name and description as in the given menu. Keep all special characters or numbers (e.g. keep the full name for #4 Soup, 12. hamburger, dumpling (1), w/ beef) as in the given menu.
  -- Preserve non-English words as they appear. If category/item name is written in English and another langauge, preserve both langugaes as they appear in the menu.
  -- If there is '*' next to the item or category, look for what this * means and add it to description.
  -- Use common sense on category names or extra names when they are not specified in the menu.

- Price Handling
  -- Convert all prices to cents (e.g., $4.99 → 499). Usually price in the image is in dollars. (e.g. 11 -> 1100)
  -- If a price is per pound, append "(per lb)" to the name and show only numbers in price.
  -- If price is not presented next to an item, look for a price around category name and apply it at the item level if it's available.
  -- If item's price still isn't clear, don't include that item.
  -- Drop any items with no price. Do not arbitrarily assign a price to an item when price is not available.

- Special Symbols & Formatting
  -- If an item has * next to it, find what it means and add it to the description.
  -- If there is a pepper image sign next to an item, add 'Spicy' to the description.
  -- If a drink is named "Coca", convert it to "Coca-Cola".


- Handling Alcoholic Beverages
  -- Do not include alcoholic beverages in the extracted menu.

** Example Output **
{
  "is_valid_menu": "yes",
  "input_quality": 80,
  "menu_complexity": "others",
  "menu_output": ` + extractionExamples + `,
  "confidence": 90
}

`
